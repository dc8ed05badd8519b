// Package corpus holds the fixed question/answer table the matcher searches.
//
// A Corpus is ordered: entries keep the order in which they were supplied or
// in which they appear in a YAML file. The matcher walks entries in that order
// and keeps the first closest question, so order decides ties.
//
// # File format
//
//	version: "1"
//	pairs:
//	  hello: "नमस्ते! भवतः स्वागतं हार्दं कुर्मः।"
//	  how are you: "अहं अत्यन्तं कुशलः अस्मि। भवतः कुशलं किम्?"
//
// The sequence form is accepted as well:
//
//	pairs:
//	  - question: hello
//	    answer: "नमस्ते!"
//
// A Corpus is read-only after construction and may be shared between goroutines.
package corpus
