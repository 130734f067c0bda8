package jsonstream_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/kitaev-response/jsonstream"
)

// ExampleWriter streams a small document with a growing array.
func ExampleWriter() {
	w := jsonstream.New(os.Stdout)
	w.ObjectStart()
	w.Pair("readme", "demo")
	w.Key("time_series")
	w.ArrayStart()
	for _, x := range []float64{0, 0.5} {
		w.ObjectStart()
		w.Pair("x", x)
		w.ObjectEnd()
		if err := w.Flush(); err != nil {
			fmt.Println("error:", err)

			return
		}
	}
	w.ArrayEnd()
	w.ObjectEnd()
	if err := w.Close(); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// {
	//   "readme": "demo",
	//   "time_series": [
	//     {
	//       "x": 0
	//     },
	//     {
	//       "x": 0.5
	//     }
	//   ]
	// }
}
