// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agreement_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deip/deipd/agreement"
	"github.com/deip/deipd/balance"
	"github.com/deip/deipd/fault"
	"github.com/deip/deipd/principal"
)

func sampleLicense() *agreement.Agreement {
	return &agreement.Agreement{
		Kind: agreement.License,
		License: &agreement.LicenseAgreement{
			Id:             idL1,
			Creator:        accountA,
			Licenser:       accountA,
			Licensee:       accountB,
			Hash:           [32]byte{0xaa, 0xbb},
			ActivationTime: moment(1500),
			ExpirationTime: nil,
			ProjectId:      projectP,
			Price: agreement.Price{
				Asset:  assetX,
				Amount: balance.New(200),
			},
			Status: agreement.SignedByLicenser,
		},
	}
}

func sampleContract() *agreement.Agreement {
	return &agreement.Agreement{
		Kind: agreement.GenericContract,
		Generic: &agreement.Contract{
			Id:             idG1,
			Creator:        partyAccounts[0],
			Parties:        partyAccounts,
			Hash:           [32]byte{0x01},
			ActivationTime: nil,
			ExpirationTime: moment(99999),
			Status: agreement.GenericStatus{
				Kind:       agreement.PartiallyAccepted,
				AcceptedBy: []principal.Account{partyAccounts[1], partyAccounts[3]},
			},
		},
	}
}

func TestRecordRoundTrip(t *testing.T) {
	for _, a := range []*agreement.Agreement{sampleLicense(), sampleContract()} {
		packed := a.Pack()
		b, err := agreement.Unpack(packed)
		require.Nil(t, err, "unpack: %s", a.Kind)
		assert.Equal(t, a, b, "decoded: %s", a.Kind)
		assert.Equal(t, packed, b.Pack(), "repacked: %s", a.Kind)
		assert.Equal(t, byte(a.Kind), packed[0], "variant tag: %s", a.Kind)
	}
}

func TestRecordStrictDecode(t *testing.T) {
	packed := sampleLicense().Pack()

	_, err := agreement.Unpack(append(append([]byte{}, packed...), 0))
	assert.Equal(t, fault.RecordHasTrailingData, err, "trailing data")

	_, err = agreement.Unpack(packed[:len(packed)-1])
	assert.Equal(t, fault.RecordTruncated, err, "truncated")

	bad := append([]byte{}, packed...)
	bad[0] = 9
	_, err = agreement.Unpack(bad)
	assert.Equal(t, fault.RecordUnknownTag, err, "unknown variant")

	bad = append([]byte{}, packed...)
	bad[len(bad)-1] = 4
	_, err = agreement.Unpack(bad)
	assert.Equal(t, fault.RecordUnknownTag, err, "unknown status")

	// accepted set out of order
	c := sampleContract()
	c.Generic.Status.AcceptedBy = []principal.Account{partyAccounts[3], partyAccounts[1]}
	_, err = agreement.Unpack(c.Pack())
	assert.Equal(t, fault.RecordNotCanonical, err, "unsorted accepted set")
}

func TestRecordJSON(t *testing.T) {
	buffer, err := json.Marshal(sampleLicense())
	require.Nil(t, err, "marshal")

	var decoded agreement.Agreement
	require.Nil(t, json.Unmarshal(buffer, &decoded), "unmarshal")
	assert.Equal(t, sampleLicense(), &decoded, "decoded")

	var m map[string]interface{}
	require.Nil(t, json.Unmarshal(buffer, &m), "generic unmarshal")
	assert.Equal(t, "License", m["kind"], "kind name")
	license := m["license"].(map[string]interface{})
	assert.Equal(t, "SignedByLicenser", license["status"], "status name")
	assert.Equal(t, "200", license["price"].(map[string]interface{})["amount"], "amount as decimal string")
}
