package otp

import (
	"strconv"

	"github.com/xlzd/gotp"
)

const (
	MinCode = 1000
	MaxCode = 9999

	secretLength = 32
	hotpDigits   = 8
)

// Generator issues numeric one-time codes.
type Generator interface {
	Code() int
}

// GOTPGenerator draws each code from an HOTP over a fresh random secret,
// folded into [MinCode, MaxCode].
type GOTPGenerator struct{}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{}
}

func (g *GOTPGenerator) Code() int {
	hotp := gotp.NewHOTP(gotp.RandomSecret(secretLength), hotpDigits, nil)

	v, err := strconv.Atoi(hotp.At(0))
	if err != nil {
		v = 0
	}

	return MinCode + v%(MaxCode-MinCode+1)
}
