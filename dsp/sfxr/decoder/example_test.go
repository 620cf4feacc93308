package decoder_test

import (
	"fmt"

	"github.com/cwbudde/algo-sfxr/dsp/sfxr/decoder"
	"github.com/cwbudde/algo-sfxr/dsp/sfxr/preset"
)

func ExampleDecoder() {
	p := preset.Generate(preset.Blip, 0, 1)

	var d decoder.Decoder
	d.StartQuick(p)

	n := 0
	for d.Playing() {
		d.Next()
		n++
	}

	fmt.Println(n > 0, d.Playing())
	// Output: true false
}
