package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Tamanho dos IDs de sessão; também compõem a chave do histórico
const sessionIDLength = 12

func GenerateSessionID() (string, error) {
	return gonanoid.Generate(characters, sessionIDLength)
}

// ValidSessionID evita que IDs arbitrários vindos da URL virem chaves de histórico
func ValidSessionID(id string) bool {
	if len(id) != sessionIDLength {
		return false
	}
	for _, c := range id {
		if !isIDChar(c) {
			return false
		}
	}
	return true
}

func isIDChar(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
