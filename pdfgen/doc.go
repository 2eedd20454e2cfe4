// Package pdfgen renders tabular records into PDF files.
//
// A table is an ordered list of rows. Row 0 is the header: it is drawn with the
// header fill, and with Config.RepeatHeader also at the top of every
// continuation page. After the
// table, a single attribution line names the generating user, the generation
// time and the number of records (rows minus the header).
//
// Example:
//
//	file, err := pdfgen.FromList([][]any{
//		{"Name", "Age"},
//		{"Alice", 30},
//		{"Bob", 25},
//	}, "", "admin")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(file.Path) // e.g. 5k0q9c2m1v8a7b3d4e6f1g2h3j.pdf
//
// An empty destination produces a random base-32 file name in the working
// directory. Styling is configured once through Config when building a
// Generator; it is not a per-call option.
package pdfgen
