package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRun_WiresRoutesWithoutListening(t *testing.T) {
	isTest = true
	defer func() { isTest = false }()

	var capturedEngine *gin.Engine
	var capturedPort string

	// intercept the listen call
	startServer = func(r *gin.Engine, port string) error {
		capturedEngine = r
		capturedPort = port
		return nil
	}

	main()

	assert.NotNil(t, capturedEngine)
	assert.Equal(t, "8080", capturedPort)
	assert.NotEmpty(t, capturedEngine.Routes())
}
