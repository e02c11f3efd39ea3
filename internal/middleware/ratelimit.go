package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Janela fixa via INCR+PEXPIRE atômicos; vale entre instâncias do serviço.
var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimitMiddleware limita requisições por IP nos endpoints públicos de
// reserva. Sem Redis configurado, ou com Redis fora do ar, deixa passar —
// o limite é proteção, não dependência.
func RateLimitMiddleware(rdb *redis.Client, perMinute int) gin.HandlerFunc {
	window := time.Minute

	return func(c *gin.Context) {
		if rdb == nil || perMinute <= 0 {
			c.Next()
			return
		}

		key := "rl:public:" + c.ClientIP()

		count, err := rateLimitScript.Run(
			c.Request.Context(),
			rdb,
			[]string{key},
			window.Milliseconds(),
		).Int64()
		if err != nil {
			log.Println("rate limit error:", err)
			c.Next()
			return
		}

		if count > int64(perMinute) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate_limit_exceeded",
			})
			return
		}

		c.Next()
	}
}
