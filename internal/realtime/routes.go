package realtime

import "github.com/gin-gonic/gin"

// RegisterRoutes memasang endpoint handshake STOMP; endpoint ini publik.
func RegisterRoutes(r *gin.Engine, hub *Hub) {
	r.GET(Endpoint, gin.WrapH(hub))
}
