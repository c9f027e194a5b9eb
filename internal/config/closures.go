package config

// DefaultClosures is the planned-works scenario: segments taken out of
// service together. The Edgware Road – Baker Street pair is listed twice;
// the second deletion is a no-op.
func DefaultClosures() [][]string {
	return [][]string{
		{"Edgware Road", "Baker Street"}, {"Edgware Road", "Baker Street"},
		{"Baker Street", "Finchley Road"}, {"Bond Street", "Oxford Circus"},
		{"Finchley Road", "Wembley Park"}, {"Finchley Road", "Harrow-on-the-Hill"},
		{"Oxford Circus", "Green Park"}, {"Piccadilly Circus", "Charing Cross"},
		{"Piccadilly Circus", "Green Park"}, {"Green Park", "Westminster"},
		{"Leicester Square", "Tottenham Court Road"}, {"Waterloo", "Westminster"},
		{"Waterloo", "Kennington"}, {"Waterloo", "Bank"},
		{"Lambeth North", "Elephant & Castle"}, {"Grange Hill", "Hainault"},
		{"Stratford", "Mile End"}, {"Liverpool Street", "Aldgate"},
		{"Liverpool Street", "Moorgate"}, {"Liverpool Street", "Aldgate East"},
		{"Aldgate East", "Tower Hill"}, {"St. Paul's", "Chancery Lane"},
		{"Marble Arch", "Lancaster Gate"}, {"High Street Kensington", "Gloucester Road"},
		{"High Street Kensington", "Earl's Court"}, {"Ealing Broadway", "Ealing Common"},
		{"Earl's Court", "Barons Court"}, {"Knightsbridge", "Hyde Park Corner"},
		{"Victoria", "St. James's Park"}, {"Barbican", "Farringdon"},
		{"King's Cross St. Pancras", "Euston"}, {"King's Cross St. Pancras", "Angel"},
		{"Euston", "Camden Town"}, {"Barons Court", "Hammersmith"},
		{"Hammersmith", "Acton Town"}, {"Hammersmith", "Turnham Green"},
		{"Acton Town", "Turnham Green"}, {"Wembley Park", "Harrow-on-the-Hill"},
		{"Harrow-on-the-Hill", "Moor Park"}, {"Canary Wharf", "North Greenwich"},
		{"Rayners Lane", "South Harrow"}, {"Covent Garden", "Holborn Central"},
		{"Stockwell", "Vauxhall"},
	}
}
