package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"resume-parser/internal/config"
	"resume-parser/internal/constants"
	"resume-parser/internal/logger"
	"resume-parser/internal/processor"

	"github.com/spf13/pflag"
)

// 命令行参数定义
var (
	pdfFilePath = pflag.StringP("pdf", "p", "", "PDF简历文件路径 (必填)")
	mode        = pflag.StringP("mode", "m", constants.ModeParse, "执行模式: extract=仅提取文本, parse=抽取姓名/邮箱/电话/技能")
	outputFile  = pflag.StringP("output", "o", "", "保存结果到文件，默认输出到标准输出")
	configPath  = pflag.StringP("config", "c", "", "配置文件路径")
	timeout     = pflag.Duration("timeout", 30*time.Second, "单个文件的处理超时")
)

func main() {
	pflag.Parse()

	if *pdfFilePath == "" {
		fmt.Fprintln(os.Stderr, "错误: 必须提供PDF文件路径。使用 -p 参数。")
		pflag.Usage()
		os.Exit(1)
	}
	if *mode != constants.ModeExtract && *mode != constants.ModeParse {
		fmt.Fprintf(os.Stderr, "错误: 未知模式 '%s'。支持的模式: extract, parse\n", *mode)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	// 命令行模式只输出警告以上的日志
	if _, err := logger.Init(logger.Config{Level: "warn", Format: "pretty"}); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}

	out, err := run(cfg, *pdfFilePath, *mode, *timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "处理失败: %v\n", err)
		os.Exit(1)
	}

	if *outputFile == "" {
		fmt.Println(string(out))
		return
	}
	if err := os.WriteFile(*outputFile, out, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "保存到文件失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "结果已保存到: %s\n", *outputFile)
}

// run 读取文件并按模式返回输出内容
func run(cfg *config.Config, path, mode string, timeout time.Duration) ([]byte, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("无法获取文件的绝对路径: %w", err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("无法读取文件 %s: %w", absPath, err)
	}

	// 创建上下文，添加超时以防止无限等待
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	rp, err := processor.CreateProcessorFromConfig(ctx, cfg, logger.Named("resumeprocessor"))
	if err != nil {
		return nil, err
	}

	if mode == constants.ModeExtract {
		text, err := rp.RenderToText(ctx, data)
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	}

	result, err := rp.Process(ctx, filepath.Base(absPath), data)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(result, "", "  ")
}
