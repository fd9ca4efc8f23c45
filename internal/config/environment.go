package config

import (
	"strings"
)

type Environment int32

const (
	UNDEFINED_ENV Environment = iota
	LOCAL_ENV
	DEV_ENV
	UAT_ENV
	PROD_ENV
)

var environmentNames = map[Environment]string{
	LOCAL_ENV: "local",
	DEV_ENV:   "dev",
	UAT_ENV:   "uat",
	PROD_ENV:  "prod",
}

// StringToEnvironment is case insensitive; unknown names give UNDEFINED_ENV.
func StringToEnvironment(s string) Environment {
	s = strings.TrimSpace(s)
	for env, name := range environmentNames {
		if strings.EqualFold(name, s) {
			return env
		}
	}
	return UNDEFINED_ENV
}

func EnvironmentToString(e Environment) string {
	if name, ok := environmentNames[e]; ok {
		return name
	}
	return "UNDEFINED"
}

func (e Environment) String() string {
	return EnvironmentToString(e)
}
