package layout

// FlashMessage is a one-shot notice shown at the top of the next page
type FlashMessage struct {
	Type    string // success, error, info
	Message string
}

// PageData holds the values every full page needs
type PageData struct {
	Title string
	Flash *FlashMessage
}

func pageTitle(data PageData) string {
	if data.Title == "" {
		return "Puppy Bowl"
	}
	return data.Title + " | Puppy Bowl"
}
