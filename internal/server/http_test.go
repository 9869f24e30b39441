package server

import (
	"testing"

	"github.com/gin-gonic/gin"

	"bfhl-server/internal/config"
)

func TestNewHTTPServerAddr(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		HTTP: config.HTTPConfig{Host: "127.0.0.1", Port: 8000},
	}
	server := NewHTTPServer(cfg, gin.New())
	if server.Addr != "127.0.0.1:8000" {
		t.Fatalf("unexpected addr: %s", server.Addr)
	}
	if server.ReadHeaderTimeout <= 0 {
		t.Fatalf("expected read header timeout")
	}
}

func TestNewHTTPServerH2C(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{
		HTTP: config.HTTPConfig{Host: "0.0.0.0", Port: 8000, HTTP2Enabled: true},
	}
	server := NewHTTPServer(cfg, router)
	if server.Handler == router {
		t.Fatalf("expected h2c wrapped handler")
	}
}
