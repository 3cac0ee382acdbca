// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

//go:generate go run github.com/golang/mock/mockgen@v1.6.0 -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/keychain.go -mock_names=Keychain=Keychain . Keychain
//go:generate go run github.com/golang/mock/mockgen@v1.6.0 -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/signer.go -mock_names=Signer=Signer . Signer
