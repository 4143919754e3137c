package main

import (
	"flag"
	"fmt"
	"log"

	rt "github.com/briarwood/go-raytracer"
)

var (
	outFile = flag.String("out_file", "out.png", "png filename to write")
	width   = flag.Int("width", 800, "image width in pixels")
	height  = flag.Int("height", 600, "image height in pixels")
	threads = flag.Int("threads", 4, "worker thread count")
)

func main() {
	flag.Parse()

	scene, camera, cfg, err := rt.ExampleScene1(*width, *height)
	if err != nil {
		log.Fatal(err)
	}
	cfg.OutputPath = *outFile
	cfg.Threads = *threads

	log.Printf("rendering %dx%d scene with %d threads", *width, *height, cfg.Threads)
	if err := rt.RenderToFile(scene, camera, cfg); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", *outFile)
}
