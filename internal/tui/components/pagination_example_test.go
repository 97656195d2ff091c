package components_test

import (
	"fmt"

	"github.com/MikeBiancalana/widgetkit/internal/tui/components"
)

// ExampleComputeWindow shows how the page window collapses around the
// current page.
func ExampleComputeWindow() {
	for _, page := range []int{1, 5, 10} {
		fmt.Println(components.ComputeWindow(10, page))
	}

	// Output:
	// [1 2 3 4 5 ... 10]
	// [1 ... 4 5 6 ... 10]
	// [1 ... 6 7 8 9 10]
}

// ExampleComputeWindow_short lists every page when they all fit.
func ExampleComputeWindow_short() {
	fmt.Println(components.ComputeWindow(7, 3))

	// Output:
	// [1 2 3 4 5 6 7]
}
