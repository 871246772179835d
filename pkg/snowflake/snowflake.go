package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenOrderID 订单主键，对外展示前再经 hashid 编码
func GenOrderID() int64 {
	return node.Generate().Int64()
}
