package dates_test

import (
	"errors"
	"fmt"

	"github.com/MikeBiancalana/widgetkit/internal/dates"
)

// ExampleMaskDigits demonstrates the slash insertion applied while typing
func ExampleMaskDigits() {
	for _, raw := range []string{"1", "150", "1503", "15032024", "15/03/2024999", "1a5"} {
		fmt.Printf("%q\n", dates.MaskDigits(raw))
	}

	// Output:
	// "1"
	// "15/0"
	// "15/03"
	// "15/03/2024"
	// "15/03/2024"
	// "15"
}

func ExampleParse() {
	d, err := dates.Parse("29/02/2024")
	fmt.Println(dates.Format(d), err)

	_, err = dates.Parse("30/02/2024")
	fmt.Println(errors.Is(err, dates.ErrInvalidDate))

	_, err = dates.Parse("2024-02-29")
	fmt.Println(errors.Is(err, dates.ErrInvalidFormat))

	// Output:
	// 29/02/2024 <nil>
	// true
	// true
}
