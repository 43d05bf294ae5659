package catalog

// Default returns the built-in demo catalog.
func Default() *Catalog {
	slides := []Slide{
		{Heading: "Light in motion", Subtitle: "A collection of stills and clips from the field", ImageRef: "hero/slide-1.jpg"},
		{Heading: "Cities after dark", Subtitle: "Architecture under sodium lamps", ImageRef: "hero/slide-2.jpg"},
		{Heading: "Drawn by hand", Subtitle: "Sketchbooks and ink studies", ImageRef: "hero/slide-3.jpg"},
	}

	items := []Item{
		{ID: "aurora-fjord", Title: "Aurora Over the Fjord", Category: Nature, ImageRef: "images/aurora-fjord.jpg", Caption: "Tromsø, February"},
		{ID: "harbor-dawn", Title: "Harbor at Dawn", Category: Photo, ImageRef: "images/harbor-dawn.jpg"},
		{ID: "timelapse-bridge", Title: "Bridge Timelapse", Category: Video, ImageRef: "media/bridge.mp4", Caption: "Eight hours in ninety seconds"},
		{ID: "ink-heron", Title: "Ink Heron", Category: Illustration, ImageRef: "images/ink-heron.png"},
		{ID: "brutalist-stairs", Title: "Brutalist Stairs", Category: Architecture, ImageRef: "images/brutalist-stairs.jpg"},
		{ID: "market-portrait", Title: "Market Portrait", Category: Photo, ImageRef: "images/market-portrait.jpg"},
		{ID: "forest-rain", Title: "Forest Rain", Category: Nature, ImageRef: "images/forest-rain.jpg"},
		{ID: "drone-coast", Title: "Drone Over the Coast", Category: Video, ImageRef: "media/drone-coast.mp4"},
		{ID: "glass-atrium", Title: "Glass Atrium", Category: Architecture, ImageRef: "images/glass-atrium.jpg", Caption: "Looking up, noon"},
		{ID: "city-sketch", Title: "City Sketch", Category: Illustration, ImageRef: "images/city-sketch.png"},
		{ID: "night-tram", Title: "Night Tram", Category: Photo, ImageRef: "images/night-tram.jpg"},
		{ID: "desert-bloom", Title: "Desert Bloom", Category: Nature, ImageRef: "images/desert-bloom.jpg"},
	}

	return New("Lumen Gallery", DefaultCategories, slides, items)
}
