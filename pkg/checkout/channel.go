package checkout

// Channel 客户手动发送订单信息的聊天渠道
type Channel string

const (
	ChannelMessenger Channel = "messenger"
	ChannelInstagram Channel = "instagram"
	ChannelViber     Channel = "viber"
)

var Channels = []Channel{ChannelMessenger, ChannelInstagram, ChannelViber}

func (c Channel) Valid() bool {
	for _, ch := range Channels {
		if ch == c {
			return true
		}
	}
	return false
}
