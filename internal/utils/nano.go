package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// IDSize is the length of the random part of every generated ID.
var IDSize = 24

type IDKind string

const (
	KindBeneficiary IDKind = "ben"
	KindProvider    IDKind = "prv"
	KindCrisis      IDKind = "crs"
	KindDonation    IDKind = "don"
	KindAllocation  IDKind = "alc"
)

func NanoID() string {
	return gonanoid.MustGenerate(idAlphabet, IDSize)
}

// NewID returns a random ID prefixed with its entity kind, e.g. "ben_3fK...".
func NewID(kind IDKind) string {
	if kind == "" {
		return NanoID()
	}
	return string(kind) + "_" + NanoID()
}
