package fleet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
)

// ErrInvalidTrain is returned when raw attributes fall outside their ranges
var ErrInvalidTrain = errors.New("invalid train attributes")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate rejects attributes that are out of range or whose certificate
// expiry does not postdate its issue date.
func Validate(attrs core.TrainAttributes) error {
	err := validate.Struct(attrs)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidTrain, err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			problems = append(problems, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			problems = append(problems, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: train %q: %s", ErrInvalidTrain, attrs.TrainNumber, strings.Join(problems, "; "))
}
