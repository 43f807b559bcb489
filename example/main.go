package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tokmz/docskit"
	"github.com/tokmz/docskit/pkg/config"
	"github.com/tokmz/docskit/pkg/themes"
)

func main() {
	// 从配置文件加载品牌与文档设置，保护模式防止外部篡改
	cfg := config.New(
		config.WithConfigFile("example/config.yaml"),
		config.WithProtected(true),
		config.WithAutoWatch(true),
	)
	if err := cfg.Load(); err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	defer cfg.Close()

	bc, err := cfg.Brand()
	if err != nil {
		log.Fatalf("品牌配置无效: %v", err)
	}
	docs, err := cfg.Docs()
	if err != nil {
		log.Fatalf("文档配置无效: %v", err)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	r := gin.Default()
	r.StaticFile(docs.SpecURL, "example/openapi.json")

	m := docskit.New(r,
		docskit.WithBrand(bc),
		docskit.WithSpecURL(docs.SpecURL),
		docskit.WithTitle(docs.Title),
		docskit.WithLogger(logger),
	)

	m.AddAll().
		AddRapiDoc("/docs/jwt", func(rd *themes.RapiDoc) {
			rd.WithJWTAuth("/auth/token")
		}).
		AddIndex("/")

	if err := m.Err(); err != nil {
		log.Fatalf("文档端点注册失败: %v", err)
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}
