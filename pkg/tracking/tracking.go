package tracking

import "storefront/models"

// Steps 线性履约进度，cancelled 不在其中
var Steps = []string{
	models.OrderStatusNew,
	models.OrderStatusConfirmed,
	models.OrderStatusProcessing,
	models.OrderStatusShipped,
	models.OrderStatusDelivered,
}

const Cancelled = -1

// Step cancelled 与未知状态都返回 -1
func Step(status string) int {
	if status == models.OrderStatusCancelled {
		return Cancelled
	}
	for i, s := range Steps {
		if s == status {
			return i
		}
	}
	return Cancelled
}

// Progress 进度条百分比 min(100, max(0, step*25))
func Progress(step int) int {
	return min(100, max(0, step*25))
}
