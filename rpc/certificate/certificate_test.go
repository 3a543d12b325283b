// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"io/ioutil"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/deip/deipd/fixtures"
	"github.com/deip/deipd/rpc/certificate"
)

// self signed pair in PEM form
func selfSigned(t *testing.T) (string, string) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.Nil(t, err, "generate key")

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "deipd test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		DNSNames:     []string{"localhost"},
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	require.Nil(t, err, "create certificate")

	keyDer, err := x509.MarshalECPrivateKey(key)
	require.Nil(t, err, "marshal key")

	c := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	k := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDer})
	return string(c), string(k)
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key := selfSigned(t)

	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	require.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, certificate.Fingerprint(sha3.Sum256(pair.Certificate[0])), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")
}

func TestGetBadPair(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "x", "y")
	assert.NotNil(t, err, "bad pem")
}

func TestLoad(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)

	config, _, err := certificate.Load(log, "test", "", "")
	assert.Nil(t, err, "disabled")
	assert.Nil(t, config, "no TLS config")

	cer, key := selfSigned(t)
	dir := t.TempDir()
	cf := filepath.Join(dir, "rpc.crt")
	kf := filepath.Join(dir, "rpc.key")
	require.Nil(t, ioutil.WriteFile(cf, []byte(cer), 0600), "write certificate")
	require.Nil(t, ioutil.WriteFile(kf, []byte(key), 0600), "write key")

	config, _, err = certificate.Load(log, "test", cf, kf)
	require.Nil(t, err, "load")
	assert.NotNil(t, config, "TLS config")

	_, _, err = certificate.Load(log, "test", cf, filepath.Join(dir, "missing.key"))
	assert.NotNil(t, err, "missing key file")
}
