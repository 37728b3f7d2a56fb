package handler

import (
	"github.com/labstack/echo/v4"
)

func RegisterHandlers(e *echo.Echo, h *DefaultHandler) {
	e.GET("/wallet", h.GETWallet)
	e.GET("/nodes", h.GETNodes)
	e.POST("/add_node", h.POSTAddNode)
	e.GET("/blockchain", h.GETBlockchain)
	e.GET("/blockchain/validate", h.GETValidateBlockchain)
	e.POST("/mine", h.POSTMine)
	e.GET("/current_transactions", h.GETCurrentTransactions)
	e.POST("/create_transaction", h.POSTCreateTransaction)
	e.POST("/store-received-transaction", h.POSTStoreReceivedTransaction)
	e.POST("/store-received-block", h.POSTStoreReceivedBlock)
	e.GET("/balance", h.GETBalance)
	e.GET("/balance/:identity", h.GETBalance)
	e.GET("/health", h.GETHealth)
}
