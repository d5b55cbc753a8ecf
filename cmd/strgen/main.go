package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"strgen/internal/regexgen"
)

var (
	pattern   = flag.String("re", "", "generation pattern")
	count     = flag.Int("n", 10, "number of strings to generate")
	increment = flag.String("i", "", "initial value for \\i tokens")
	values    = flag.String("a", "", "comma-separated values for \\a tokens")
	seed      = flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
)

func main() {
	flag.Parse()
	if *pattern == "" {
		log.Fatal("usage: strgen -re <pattern> [-n count] [-i start] [-a v1,v2,...] [-seed n]")
	}

	var list []string
	if *values != "" {
		list = strings.Split(*values, ",")
	}

	gen, err := regexgen.New(*pattern, *increment, list)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		gen.Reseed(*seed)
	}

	for i := 0; i < *count; i++ {
		fmt.Println(gen.Generate())
	}
}
