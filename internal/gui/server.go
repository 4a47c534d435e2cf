// A very simple gin HTTP server
// for reading the planner's comparison result
// from a script or a web page.
// The gui sends an empty struct to the planner bridge
// and the planner sends back the current report,
// which is served as JSON.
package gui

import (
	"net/http"

	"github.com/espsim/edgeplan/internal/planner"
	"github.com/espsim/edgeplan/sim"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var reportRequestStream chan<- struct{}
var reportStream <-chan *sim.Report
var router *gin.Engine

func registerRoutes() {
	router.GET("/report", func(ctx *gin.Context) {
		reportRequestStream <- struct{}{}
		report := <-reportStream
		if report == nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "no report computed yet",
			})

			return
		}

		ctx.JSON(http.StatusOK, report)
	})

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}

func SetUp(bridge planner.PlannerBridge) {
	reportStream = bridge.ReportStream
	reportRequestStream = bridge.ReportRequestStream

	router = gin.Default()

	router.Use(cors.Default())

	registerRoutes()
}

func Run(addr string) {
	router.Run(addr)
}
