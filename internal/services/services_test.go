package services_test

import (
	"github.com/cyphera/cyphera-circles/internal/logger"
)

const signerAddress = "0x9999999999999999999999999999999999999999"

func init() {
	logger.InitLogger("test")
}
