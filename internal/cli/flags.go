package cli

import (
	"errors"
	"fmt"
	"strconv"
)

var errMissingFlag = errors.New("required flag not provided")

// optionalInt is an int flag that remembers whether it was set.
type optionalInt struct {
	value *int
}

func (o *optionalInt) String() string {
	if o == nil || o.value == nil {
		return ""
	}
	return strconv.Itoa(*o.value)
}

func (o *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	o.value = &v
	return nil
}

// optionalString is a string flag that remembers whether it was set, so an
// explicit empty value can be told apart from an absent flag.
type optionalString struct {
	value *string
}

func (o *optionalString) String() string {
	if o == nil || o.value == nil {
		return ""
	}
	return *o.value
}

func (o *optionalString) Set(s string) error {
	o.value = &s
	return nil
}

func required(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: -%s", errMissingFlag, name)
	}
	return nil
}
