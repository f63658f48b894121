package middleware

import "net/http"

// MaxMessageBytes limita o corpo das rotas que recebem mensagens do chat
const MaxMessageBytes = 16 << 10

// LimitBody corta o corpo da requisição em limit bytes; a decodificação falha além disso
func LimitBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
