package codec

import "log"

type OptionParam uint8

const (
	OptionSingleSymbolBit OptionParam = 0x1
	OptionVerbose         OptionParam = 0x2
)

type Options struct {
	// SingleSymbolBit gives a one-symbol alphabet the code "0" instead of
	// the empty code, so its messages can be decoded.
	SingleSymbolBit bool
	Verbose         bool
	Logger          *log.Logger
}

func NewOptions() *Options {
	return &Options{
		SingleSymbolBit: false,
		Verbose:         false,
		Logger:          log.Default(),
	}
}

func (o *Options) SetValue(param OptionParam, value uint32) {
	switch param {
	case OptionSingleSymbolBit:
		o.SingleSymbolBit = value == 1
	case OptionVerbose:
		o.Verbose = value == 1
	}
}
