package regexgen

import "fmt"

func ExampleGenerator_Generate() {
	gen, err := New(`ORD-\i{:6}-\a+`, "41", []string{"east", "west"})
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < 3; i++ {
		fmt.Println(gen.Generate())
	}
	// Output:
	// ORD-000042-east
	// ORD-000043-west
	// ORD-000044-east
}
