// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsForPrefix(t *testing.T) {
	assert.Equal(t, &MainNetParams, ParamsForPrefix("pea"))
	assert.Equal(t, &TestNetParams, ParamsForPrefix("tpea"))
	assert.Equal(t, &PrivNetParams, ParamsForPrefix("ppea"))
	assert.Equal(t, &MainNetParams, ParamsForPrefix("PEA"))
	assert.Nil(t, ParamsForPrefix("xpea"))
}

func TestRegisterDuplicate(t *testing.T) {
	dup := Params{Name: "dup", AddressPrefix: "pea"}
	assert.Equal(t, ErrDuplicateNet, Register(&dup))
}

func TestMojoUnit(t *testing.T) {
	// Every network shares the coin unit, and each reward amount in the
	// schedule is a whole number of eighth-coins.
	for _, p := range []*Params{&MainNetParams, &TestNetParams, &PrivNetParams} {
		assert.Equal(t, uint64(1000000000000), p.MojosPerCoin, p.Name)
		assert.Equal(t, uint64(0), p.MojosPerCoin%8, p.Name)
	}
}
