// Package config provides environment tuning knobs. They adjust presentation
// and logging without a rebuild; the simulation rate is a fixed constant and
// deliberately not among them.
package config

import (
	"os"
	"strconv"
)

var (
	// LogLevel is the logrus level name the binaries apply at startup.
	LogLevel = getEnv("SNAKE_LOG_LEVEL", "info")
	// TermFrameHz is the terminal front-end's redraw rate. It changes how
	// often the screen repaints, never how fast the snake moves.
	TermFrameHz = getEnvInt("SNAKE_TERM_FPS", 30)
)

func getEnv(varName, defaults string) string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	return val
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
