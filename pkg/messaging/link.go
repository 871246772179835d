package messaging

import (
	"net/url"
	"storefront/config"
	"storefront/pkg/checkout"
	"strings"
)

// encodeComponent 与浏览器 encodeURIComponent 一致：空格编码为 %20
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Link 预填消息的深链；instagram 不支持预填，客户需粘贴复制的消息
func Link(handles config.Messaging, ch checkout.Channel, text string) string {
	switch ch {
	case checkout.ChannelMessenger:
		if handles.Messenger == "" {
			return ""
		}
		return "https://m.me/" + url.PathEscape(handles.Messenger) + "?text=" + encodeComponent(text)
	case checkout.ChannelInstagram:
		if handles.Instagram == "" {
			return ""
		}
		return "https://www.instagram.com/" + url.PathEscape(handles.Instagram) + "/"
	case checkout.ChannelViber:
		if handles.Viber == "" {
			return ""
		}
		return "viber://chat?number=" + encodeComponent(handles.Viber) + "&draft=" + encodeComponent(text)
	}
	return ""
}

// Links 所有已配置渠道的链接
func Links(handles config.Messaging, text string) map[checkout.Channel]string {
	links := make(map[checkout.Channel]string, len(checkout.Channels))
	for _, ch := range checkout.Channels {
		if l := Link(handles, ch, text); l != "" {
			links[ch] = l
		}
	}
	return links
}
