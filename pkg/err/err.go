package errprocess

import (
	"errors"

	"social_chat_service/pkg/logger"
)

// Set log errMsg and return it as error
func Set(errMsg string) error {
	logger.Log.Error(errMsg)
	return errors.New(errMsg)
}
