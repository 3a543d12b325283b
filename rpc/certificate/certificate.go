// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS setup for the RPC listeners
package certificate

import (
	"crypto/tls"
	"io/ioutil"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Fingerprint - SHA3-256 of the DER certificate
type Fingerprint [32]byte

// Get - build a TLS configuration from PEM encoded certificate and key
func Get(log *logger.L, name, certificate, key string) (*tls.Config, Fingerprint, error) {
	var fin Fingerprint

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Load - as Get but reading the PEM files
//
// both names empty means TLS is disabled and returns a nil
// configuration
func Load(log *logger.L, name, certificateFile, keyFile string) (*tls.Config, Fingerprint, error) {
	if "" == certificateFile && "" == keyFile {
		log.Warnf("%s: TLS disabled", name)
		return nil, Fingerprint{}, nil
	}

	certificate, err := ioutil.ReadFile(certificateFile)
	if nil != err {
		log.Errorf("%s failed to read certificate: %q  error: %s", name, certificateFile, err)
		return nil, Fingerprint{}, err
	}
	key, err := ioutil.ReadFile(keyFile)
	if nil != err {
		log.Errorf("%s failed to read key: %q  error: %s", name, keyFile, err)
		return nil, Fingerprint{}, err
	}
	return Get(log, name, string(certificate), string(key))
}

// fingerprint - compute the fingerprint of a certificate
//
// openssl x509 -outform DER -in deipd-rpc.crt | sha3sum -a 256
func fingerprint(certificate []byte) Fingerprint {
	return sha3.Sum256(certificate)
}
