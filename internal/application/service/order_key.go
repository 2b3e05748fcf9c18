package service

import (
	"strconv"
	"strings"
)

const singleOrderPrefix = "single-"

func parseSingleOrderKey(key string) (uint, bool) {
	rest, ok := strings.CutPrefix(key, singleOrderPrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(rest, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
