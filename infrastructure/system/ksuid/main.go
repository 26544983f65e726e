package ksuid

import (
	"github.com/segmentio/ksuid"
	domainKsuid "github.com/t-kuni/openfit/domain/system/ksuid"
)

type KsuidGenerator struct{}

func NewKsuidGenerator() domainKsuid.IKsuid {
	return &KsuidGenerator{}
}

// New returns a 27 character id whose prefix sorts by creation time, so
// session directories list in the order the conversations started.
func (k *KsuidGenerator) New() string {
	return ksuid.New().String()
}
