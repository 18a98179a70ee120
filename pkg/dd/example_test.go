package dd_test

import (
	"errors"
	"fmt"

	"github.com/woliveiras/godd/pkg/dd"
)

func ExampleDd_Args() {
	d := dd.New("dd").
		Input("./test.iso").
		Output("./copied.iso").
		BS("4M").
		BS("1M")
	fmt.Println(d.Args())
	// Output: [if=./test.iso of=./copied.iso bs=1M]
}

func ExampleDd_Spawn_dryRun() {
	r := dd.NewDryRunner()
	_, err := dd.New("dd").WithRunner(r).Input("/dev/zero").Output("disk.img").Count(16).Spawn()
	fmt.Println(err)
	fmt.Println(r.Calls[1])
	// Output:
	// <nil>
	// [dd if=/dev/zero of=disk.img count=16]
}

func ExampleDd_Check_missing() {
	_, err := dd.New("godd-no-such-binary").Check()
	fmt.Println(errors.Is(err, dd.ErrProcessStart))
	// Output: true
}
