package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-mazeview/api"
	api_i "github.com/beka-birhanu/vinom-mazeview/api/i"
	"github.com/beka-birhanu/vinom-mazeview/api/identity"
	mazeviewapi "github.com/beka-birhanu/vinom-mazeview/api/mazeview"
	"github.com/beka-birhanu/vinom-mazeview/config"
	"github.com/beka-birhanu/vinom-mazeview/infrastruture/logger"
	"github.com/beka-birhanu/vinom-mazeview/infrastruture/token"
	"github.com/beka-birhanu/vinom-mazeview/service"
	"github.com/beka-birhanu/vinom-mazeview/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	mazeViewer         i.MazeViewer
	mazeViewController api_i.Controller
	jwtTokenizer       i.Tokenizer
	router             *api.Router
	appLogger          i.Logger
)

func newLogger(prefix, color string) i.Logger {
	l, err := logger.New(prefix, color, os.Stdout, logger.WithLevel(config.Envs.LogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initMazeViewer() {
	var err error
	mazeViewer, err = service.NewMazeViewer(newLogger("MAZE-VIEWER", logger.ColorCyan), &service.ViewerOptions{
		MaxSnapshotBytes: config.Envs.MaxBodyBytes,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze viewer: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze viewer initialized")
}

func initMazeViewController() {
	var err error
	mazeViewController, err = mazeviewapi.NewMazeViewController(mazeViewer, config.Envs.MaxBodyBytes)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze view controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze view controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeViewController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger = newLogger("APP", logger.ColorGreen)
	gin.SetMode(config.Envs.GinMode)

	initMazeViewer()
	initMazeViewController()
	initJWTTokenizer()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
