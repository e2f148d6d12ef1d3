// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/pkg/errors"
)

// ZenithNet represents which zenith network a message belongs to.
type ZenithNet uint32

// Constants used to indicate the message zenith network.
const (
	// MainNet represents the main zenith network.
	MainNet ZenithNet = 0xd9b4bef9

	// TestNet represents the test network.
	TestNet ZenithNet = 0x0709110b

	// SimNet represents the simulation test network.
	SimNet ZenithNet = 0x12141c16
)

// Params defines a zenith network by its parameters. These parameters may be
// used by zenith applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net ZenithNet

	// StakeMagic is the chain-specific constant mixed into the
	// proof-of-stake eligibility hash. Asset chains derive it from the
	// chain name and supply; it must differ between networks so stake
	// hashes are not portable across chains.
	StakeMagic uint32

	// RelayNonStdTxs defines whether the network should relay non-standard
	// transactions by default.
	RelayNonStdTxs bool
}

// MainNetParams defines the network parameters for the main zenith network.
var MainNetParams = Params{
	Name:           "mainnet",
	Net:            MainNet,
	StakeMagic:     0x53c41e92,
	RelayNonStdTxs: false,
}

// TestNetParams defines the network parameters for the test zenith network.
var TestNetParams = Params{
	Name:           "testnet",
	Net:            TestNet,
	StakeMagic:     0x8a45f013,
	RelayNonStdTxs: true,
}

// SimNetParams defines the network parameters for the simulation test
// network. This network is similar to the normal test network except it is
// intended for private use within a group of individuals doing simulation
// testing.
var SimNetParams = Params{
	Name:           "simnet",
	Net:            SimNet,
	StakeMagic:     0x1f07b856,
	RelayNonStdTxs: true,
}

var (
	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be set due to the network already being a standard
	// network or previously-registered via this package.
	ErrDuplicateNet = errors.New("duplicate network")

	registeredNets = map[ZenithNet]struct{}{
		MainNet: {},
		TestNet: {},
		SimNet:  {},
	}
)

// Register registers the network parameters for a custom zenith network.
// This may error with ErrDuplicateNet if the network is already registered
// (either due to a previous Register call, or the network being one of the
// default networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return errors.WithStack(ErrDuplicateNet)
	}
	registeredNets[params.Net] = struct{}{}

	return nil
}
