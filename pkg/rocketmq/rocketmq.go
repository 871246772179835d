package rocketmq

import (
	"context"
	"errors"
	"storefront/config"
	"storefront/pkg/log"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

func init() {
	rlog.SetLogLevel("error")
}

// InitProducer 未配置 nameserver 时返回 nil，调用方据此跳过投递
func InitProducer(cfg *config.RocketMQConfig) rocketmq.Producer {
	if !cfg.Enabled() {
		log.L.Info("rocketmq disabled, order events will not be published")
		return nil
	}
	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(cfg.Producer.Retry),
	)
	if err != nil {
		log.L.Error("new producer", zap.Error(err))
		return nil
	}
	if err = p.Start(); err != nil {
		log.L.Error("start producer", zap.Error(err))
		return nil
	}
	log.L.Info("init producer success")

	return p
}

func InitConsumer(cfg *config.RocketMQConfig) (rocketmq.PushConsumer, error) {
	return rocketmq.NewPushConsumer(
		consumer.WithNameServer(cfg.NameServer),
		consumer.WithGroupName(cfg.Consumer.Group),
		consumer.WithConsumerModel(consumer.Clustering),
	)
}

// SendDelayed 延迟消息，level 对应 broker 的 messageDelayLevel
func SendDelayed(ctx context.Context, p rocketmq.Producer, topic string, key string, body []byte, level int) error {
	msg := primitive.NewMessage(topic, body)
	msg.WithKeys([]string{key})
	if level > 0 {
		msg.WithDelayTimeLevel(level)
	}

	// 发送同步消息
	res, err := p.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Info("send message success", zap.String("topic", topic), zap.String("msg_id", res.MsgID))
	return nil
}

var ErrDisabled = errors.New("rocketmq is not configured")

// Publisher 对 producer 的封装，未启用时投递返回 ErrDisabled
type Publisher struct {
	producer rocketmq.Producer
}

func NewPublisher(cfg *config.RocketMQConfig) *Publisher {
	return &Publisher{producer: InitProducer(cfg)}
}

func (p *Publisher) SendDelayed(ctx context.Context, topic, key string, body []byte, level int) error {
	if p == nil || p.producer == nil {
		return ErrDisabled
	}
	return SendDelayed(ctx, p.producer, topic, key, body, level)
}

func (p *Publisher) Shutdown() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Shutdown()
}

// Subscribe 阻塞消费直到 ctx 结束；handler 返回错误时消息稍后重投
func Subscribe(ctx context.Context, cfg *config.RocketMQConfig, topic string, handler func(context.Context, []byte) error) error {
	if !cfg.Enabled() {
		return ErrDisabled
	}
	c, err := InitConsumer(cfg)
	if err != nil {
		return err
	}
	err = c.Subscribe(topic, consumer.MessageSelector{}, func(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
		for _, msg := range msgs {
			if err := handler(ctx, msg.Body); err != nil {
				log.L.Error("consume message", zap.String("topic", topic), zap.String("msg_id", msg.MsgId), zap.Error(err))
				return consumer.ConsumeRetryLater, nil
			}
		}
		return consumer.ConsumeSuccess, nil
	})
	if err != nil {
		return err
	}
	if err := c.Start(); err != nil {
		return err
	}
	log.L.Info("consumer started", zap.String("topic", topic), zap.String("group", cfg.Consumer.Group))

	<-ctx.Done()
	return c.Shutdown()
}
