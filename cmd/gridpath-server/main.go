// This starts the HTTP route server over one obstacle-map image.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/katalvlaran/gridpath/mapimg"
	"github.com/katalvlaran/gridpath/server"
)

func main() {
	var mapPath, addr string
	flag.StringVar(&mapPath, "map_image", "",
		"Path to the obstacle-map image (black pixels are obstacles).")
	flag.StringVar(&addr, "addr", ":8081", "Listen address.")
	flag.Parse()

	if mapPath == "" {
		log.Fatal("missing required -map_image argument")
	}

	m, err := mapimg.Load(mapPath)
	if err != nil {
		log.Fatalf("loading map image %s: %v", mapPath, err)
	}

	srv := server.New(m)
	log.Printf("serving %dx%d map on %s", m.Grid.Width, m.Grid.Height, addr)
	log.Fatal(http.ListenAndServe(addr, srv.Router()))
}
