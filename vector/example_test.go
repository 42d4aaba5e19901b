package vector_test

import (
	"fmt"

	"github.com/cwbudde/algo-vector/vec2"
	"github.com/cwbudde/algo-vector/vec3"
	"github.com/cwbudde/algo-vector/vector"
)

func Example() {
	a := vector.Byte2{X: 250, Y: 250}
	fmt.Println(a.Add(vector.Byte2{X: 10, Y: 10}))
	fmt.Println(a.AddSaturate(vector.Byte2{X: 10, Y: 10}))

	v := vector.Vector2F{X: 3, Y: 4}
	fmt.Println(vec2.Length(v))
	fmt.Printf("%.2f\n", vec2.Normalize(v))

	// Output:
	// X:4 Y:4
	// X:255 Y:255
	// 5
	// X:0.60 Y:0.80
}

func Example_conversion() {
	p := vector.Int2{X: 7, Y: -3}
	fmt.Println(vec3.FromVec2(p))
	fmt.Println(vec2.Convert[float64](p))

	var d vector.Vector3D = vec3.Cross(vector.Vector3D{X: 1}, vector.Vector3D{Y: 1})
	fmt.Println(d)

	// Output:
	// X:7 Y:-3 Z:1
	// X:7 Y:-3
	// X:0 Y:0 Z:1
}

func ExampleLookupKind() {
	k, _ := vector.LookupKind("Vector3F")
	fmt.Println(k.Scalar, k.Arity, k.ByteSize())
	// Output: f32 3 12
}
