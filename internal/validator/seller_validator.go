package validator

import (
	"regexp"
)

var (
	// NNN.NNN.NNN-NN
	cpfRegex = regexp.MustCompile(`^[0-9]{3}\.[0-9]{3}\.[0-9]{3}\-[0-9]{2}$`)
	// user@host.tld
	emailRegex = regexp.MustCompile(`^[\w0-9.\-]+@[\w0-9\-]+(?:\.[\w]+)+$`)
	// +NN(NN)NNNNN-NNNN
	telephoneRegex = regexp.MustCompile(`^\+[0-9]{1,4}\([0-9]{2,3}\)[0-9]{4,5}\-[0-9]{4}$`)
)

func IsCpfValid(cpf string) bool {
	return cpfRegex.MatchString(cpf)
}

func IsEmailValid(email string) bool {
	return emailRegex.MatchString(email)
}

func IsTelephoneValid(telephone string) bool {
	return telephoneRegex.MatchString(telephone)
}

// 表示名は3文字以上
func IsNameValid(name string) bool {
	return len(name) >= 3
}
