package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jusunglee/precinct-go/internal/format"
	"github.com/jusunglee/precinct-go/internal/logging"
	"github.com/jusunglee/precinct-go/internal/sites"
	"github.com/jusunglee/precinct-go/internal/views"
	"github.com/jusunglee/precinct-go/pkg/directory"
)

func main() {
	var (
		site         = flag.String("site", sites.DefaultKey, "Site profile ("+strings.Join(sites.Keys(), ", ")+")")
		stationsFile = flag.String("stations-file", "", "Stations JSON file")
		query        = flag.String("q", "", "Filter stations by name, area, postcode or address")
		id           = flag.String("id", "", "Show one station")
	)
	flag.Parse()

	logging.Init(os.Getenv("LOG_LEVEL"))
	defer logging.Sync()
	log := logging.Get()

	config := directory.DefaultConfig()
	config.Site = *site
	config.StationsFile = *stationsFile

	client, err := directory.NewLocal(config)
	if err != nil {
		log.Errorw("failed to create directory client", "error", err)
		os.Exit(1)
	}

	// Single-station mode
	if *id != "" {
		station, ok := client.Station(*id)
		if !ok {
			fmt.Println(views.NotFoundMessage)
			os.Exit(1)
		}

		fmt.Printf("\n%s (%s)\n", station.Name, station.ID)
		fmt.Printf("  %s · %s %s\n", station.Area, client.Site().City, station.Postcode)
		fmt.Printf("  %s\n", strings.Join(station.AddressLines[:], "\n  "))
		fmt.Printf("  Phone: %s (%s)\n", station.Phone, format.TelHref(station.Phone))
		fmt.Printf("  Email: %s\n", station.Email)
		fmt.Println("  Hours:")
		for _, h := range station.Hours {
			fmt.Printf("    %s: %s\n", h.Day, h.Hours)
		}
		fmt.Printf("  Directions: %s\n", format.DirectionsURL(station.Location.Lat, station.Location.Lon))
		return
	}

	// Default listing mode
	stations := client.Search(*query)
	fmt.Printf("\n%s stations\n", client.Site().ShortName)
	for _, station := range stations {
		fmt.Printf("- %s (%s): %s, %s %s\n",
			station.Name, station.ID, strings.Join(station.AddressLines[:], ", "),
			client.Site().PostcodeLabel, station.Postcode)
	}
	fmt.Println(format.CountLabel(len(stations)))
}
