package attr_test

import (
	"fmt"

	"github.com/teranos/attrgraph/attr"
)

func ExampleMake() {
	attrs := attr.Map{
		"label": attr.Make("example"),
		"rank":  attr.Make(int64(3)),
	}

	label, _ := attr.String.Get(attrs["label"])
	fmt.Println(attrs["label"].TypeIdentity(), label)

	_, ok := attr.String.Get(attrs["rank"])
	fmt.Println(ok)
	// Output:
	// attr.string@v0 example
	// false
}

func ExampleDefine() {
	// Kinds are normally package-level vars; this one lives in a private
	// registry so the example does not touch the default one.
	celsius := attr.NewKind(attr.TypeIdentity{Name: "example.celsius", Version: 1},
		attr.WithFormat(func(v float64) string { return fmt.Sprintf("%.1f°C", v) }))

	reg := attr.NewRegistry()
	reg.MustRegister(celsius)

	a, err := reg.Construct(attr.TypeIdentity{Name: "example.celsius", Version: 1}, 21.5)
	if err != nil {
		panic(err)
	}
	fmt.Println(a)
	// Output: 21.5°C
}
