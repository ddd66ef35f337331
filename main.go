package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Azurakun/money-manager/rates"
)

var rateClient *rates.Client

func main() {
	// Load ./.env if present before reading vars
	godotenv.Load(".env")

	// Support a lightweight migrate command: `./money-manager migrate`
	// It runs AutoMigrate then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB()
		fmt.Println("migration completed")
		return
	}

	initDB()
	rateClient = rates.New(exchangeRateURL(), 0)

	r := gin.Default()

	setupRoutes(r)
	serveStatic(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	r.Run(":" + port)
}

// exchangeRateURL resolves the upstream rates endpoint. EXCHANGE_API_URL
// wins outright; otherwise the URL is derived from EXCHANGE_API_KEY. Empty
// means the rates client serves its built-in fallback table.
func exchangeRateURL() string {
	if u := os.Getenv("EXCHANGE_API_URL"); u != "" {
		return u
	}
	if key := os.Getenv("EXCHANGE_API_KEY"); key != "" {
		return "https://v6.exchangerate-api.com/v6/" + key + "/latest/USD"
	}
	return ""
}

// serveStatic serves the SPA frontend from STATIC_DIR (default ./public)
// when the directory exists: real files as is, everything else falls back
// to index.html so client-side routing works.
func serveStatic(r *gin.Engine) {
	dir := os.Getenv("STATIC_DIR")
	if dir == "" {
		dir = "public"
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return
	}
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(404, gin.H{"error": "not found"})
			return
		}
		p := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			c.File(p)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	})
}
