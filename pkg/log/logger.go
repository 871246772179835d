package log

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 调用位置从模块根目录开始打印
const module = "storefront"

var (
	L     *zap.Logger
	level = zap.NewAtomicLevelAt(zap.InfoLevel)
)

func init() {
	L = New(zapcore.AddSync(os.Stdout))
}

// New 生产环境 JSON 输出，错误级别附带堆栈
func New(out zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeCaller = moduleCaller
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), out, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

// SetDebug app.debug 打开时输出 debug 日志
func SetDebug(on bool) {
	if on {
		level.SetLevel(zap.DebugLevel)
		return
	}
	level.SetLevel(zap.InfoLevel)
}

func moduleCaller(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	if i := strings.LastIndex(caller.File, module+"/"); i != -1 {
		enc.AppendString(caller.File[i:] + ":" + strconv.Itoa(caller.Line))
		return
	}
	enc.AppendString(caller.TrimmedPath())
}
