package env

import (
	"os"
	"strconv"
	"time"
)

func GetStringOrDefault(key, def string) string {
	if val, found := os.LookupEnv(key); found {
		return val
	}

	return def
}

func GetIntOrDefault(key string, def int) int {
	envVal, found := os.LookupEnv(key)
	if !found {
		return def
	}

	val, err := strconv.Atoi(envVal)
	if err != nil {
		return def
	}

	return val
}

func GetDurationOrDefault(key string, def time.Duration) time.Duration {
	envVal, found := os.LookupEnv(key)
	if !found {
		return def
	}

	val, err := time.ParseDuration(envVal)
	if err != nil {
		return def
	}

	return val
}
