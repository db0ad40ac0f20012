package constants

const (
	// Application-level constants
	ServiceName    = "resume-parser"
	ServiceVersion = "1.0.0"

	// HTTP 响应文案
	MsgServiceRunning = "Resume Parser Service is running"
	MsgMissingFile    = "Missing file data in request"
	MsgUnauthorized   = "missing or invalid API key"
	MsgRateLimited    = "too many requests"

	// HeaderRequestID 响应中回传的请求ID
	HeaderRequestID = "X-Request-ID"

	// 处理模式（离线命令行）
	ModeExtract = "extract" // 仅输出PDF全文
	ModeParse   = "parse"   // 输出抽取结果JSON
)
