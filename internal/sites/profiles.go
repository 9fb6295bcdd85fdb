package sites

import "github.com/jusunglee/precinct-go/internal/models"

func nowhereVille() Site {
	return Site{
		Key:           "nvcpd",
		Agency:        "Nowhere Ville City Police Department",
		ShortName:     "NVCPD",
		City:          "Nowhere Ville, USA",
		PostcodeLabel: "ZIP",
		BannerText:    "Demo site: Nowhere Ville is fictional. In an emergency, call 911.",
		Stations: []models.Station{
			{
				ID:           "hq",
				Name:         "NVCPD Headquarters",
				Area:         "Downtown Nowhere Ville",
				Postcode:     "00001",
				AddressLines: [2]string{"100 Justice Avenue", "Nowhere Ville, USA"},
				Phone:        "+15550101",
				Email:        "hq@nvcpd.gov",
				Location:     models.Location{Lat: 37.7749, Lon: -122.4194},
				Hours: []models.OpeningHours{
					{Day: "Mon–Fri", Hours: "08:00 AM – 06:00 PM"},
					{Day: "Sat", Hours: "10:00 AM – 04:00 PM"},
					{Day: "Sun", Hours: "Closed"},
				},
			},
			{
				ID:           "north",
				Name:         "North Precinct",
				Area:         "North Nowhere Ville",
				Postcode:     "00012",
				AddressLines: [2]string{"2400 North Parkway", "Nowhere Ville, USA"},
				Phone:        "+15550121",
				Email:        "north@nvcpd.gov",
				Location:     models.Location{Lat: 37.8044, Lon: -122.2712},
				Hours: []models.OpeningHours{
					{Day: "Mon–Fri", Hours: "09:00 AM – 07:00 PM"},
					{Day: "Sat", Hours: "10:00 AM – 02:00 PM"},
					{Day: "Sun", Hours: "Closed"},
				},
			},
			{
				ID:           "south",
				Name:         "South Precinct",
				Area:         "South Nowhere Ville",
				Postcode:     "00024",
				AddressLines: [2]string{"8800 South Service Rd", "Nowhere Ville, USA"},
				Phone:        "+15550134",
				Email:        "south@nvcpd.gov",
				Location:     models.Location{Lat: 37.6879, Lon: -122.4702},
				Hours: []models.OpeningHours{
					{Day: "Mon–Fri", Hours: "08:30 AM – 05:30 PM"},
					{Day: "Sat–Sun", Hours: "Closed"},
				},
			},
		},
	}
}

func anyvale() Site {
	return Site{
		Key:           "avpd",
		Agency:        "Anyvale Police Department",
		ShortName:     "AVPD",
		City:          "Anyvale, USA",
		PostcodeLabel: "ZIP",
		BannerText:    "This is a demonstration directory. For emergencies dial 911.",
		Stations: []models.Station{
			{
				ID:           "central",
				Name:         "Central Station",
				Area:         "Anyvale Old Town",
				Postcode:     "10100",
				AddressLines: [2]string{"1 Civic Plaza", "Anyvale, USA"},
				Phone:        "+1 (555) 020-1",
				Email:        "central@avpd.example",
				Location:     models.Location{Lat: 40.7128, Lon: -74.006},
				Hours: []models.OpeningHours{
					{Day: "Mon–Sun", Hours: "Open 24 hours"},
				},
			},
			{
				ID:           "riverside",
				Name:         "Riverside Station",
				Area:         "Riverside",
				Postcode:     "10140",
				AddressLines: [2]string{"350 Riverbank Drive", "Anyvale, USA"},
				Phone:        "+1 (555) 020-4",
				Email:        "riverside@avpd.example",
				Location:     models.Location{Lat: 40.7306, Lon: -73.9866},
				Hours: []models.OpeningHours{
					{Day: "Mon–Fri", Hours: "08:00 AM – 08:00 PM"},
					{Day: "Sat", Hours: "09:00 AM – 01:00 PM"},
					{Day: "Sun", Hours: "Closed"},
				},
			},
		},
	}
}
