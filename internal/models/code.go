// Package models contains shared data structures used across the application.
package models

// DefaultCode is the editor content on first launch.
const DefaultCode = "// Welcome to the scratchpad!\n" +
	"// Write JavaScript here and press Ctrl+r to run it.\n" +
	"\n" +
	"console.log(\"Hello, World!\");\n" +
	"\n" +
	"// Try some examples:\n" +
	"const numbers = [1, 2, 3, 4, 5];\n" +
	"console.log(\"Numbers:\", numbers);\n" +
	"\n" +
	"const sum = numbers.reduce((a, b) => a + b, 0);\n" +
	"console.log(\"Sum:\", sum);\n" +
	"\n" +
	"// Modern JavaScript works too\n" +
	"const greet = (name) => {\n" +
	"  return `Hello, ${name}!`;\n" +
	"};\n" +
	"\n" +
	"console.log(greet(\"Developer\"));\n" +
	"\n" +
	"// Objects and arrays are pretty printed\n" +
	"const person = {\n" +
	"  name: \"Ada\",\n" +
	"  age: 36,\n" +
	"  hobbies: [\"math\", \"poetry\", \"engines\"]\n" +
	"};\n" +
	"\n" +
	"console.log(\"Person:\", person);\n"
