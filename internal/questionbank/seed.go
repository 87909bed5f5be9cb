package questionbank

// seedProblems is the fixed catalog, grouped by topic in display order.
var seedProblems = map[Topic][]Problem{
	TopicAlgebra: {
		{Kind: "solve", Prompt: "If $3x + 7 = 19$, what is $x$?", Answer: "4", Points: 10, Diagram: "algebra_graph.png"},
		{Kind: "simplify", Prompt: "Simplify: $5(2x - 3) - 4x$", Answer: "6x-15", Points: 15},
		{Kind: "solve", Prompt: "Solve for $y$: $\\frac{y}{2} - 5 = 1$", Answer: "12", Points: 10},
		{Kind: "factor", Prompt: "Factor: $x^2 - 9$", Answer: "(x-3)(x+3)", Points: 15},
		{Kind: "solve", Prompt: "Solve the quadratic equation: $x^2 - 5x + 6 = 0$", Answer: "2,3", Points: 20},
	},
	TopicGeometry: {
		{Kind: "area", Prompt: "What is the area of a rectangle with length 8 and width 4? (Number only)", Answer: "32", Points: 10, Diagram: "rectangle_diagram.png"},
		{Kind: "perimeter", Prompt: "Find the perimeter of a triangle with sides 5, 12, and 13. (Number only)", Answer: "30", Points: 10, Diagram: "triangle_diagram.png"},
		{Kind: "angle", Prompt: "If two angles of a triangle are $60^{\\circ}$ and $40^{\\circ}$, what is the third angle? (Number only)", Answer: "80", Points: 15},
		{Kind: "volume", Prompt: "What is the volume of a cube with side length 3? (Number only)", Answer: "27", Points: 15, Diagram: "cube_diagram.png"},
		{Kind: "area", Prompt: "What is the area of a circle with radius 7? (Use π and round to 2 decimals)", Answer: "153.94", Points: 20, Diagram: "circle_diagram.png"},
	},
	TopicTrigonometry: {
		{Kind: "ratio", Prompt: "The definition of $\\cos(\\theta)$ is: (Adjacent/Hypotenuse, Opposite/Hypotenuse, Opposite/Adjacent)", Answer: "Adjacent/Hypotenuse", Points: 20, Diagram: "trig_triangle.png"},
		{Kind: "value", Prompt: "What is the value of $\\sin(30^{\\circ})$? (Fraction: 1/2 or decimal: 0.5)", Answer: "0.5", Points: 25},
		{Kind: "value", Prompt: "What is the value of $\\tan(45^{\\circ})$? (Number only)", Answer: "1", Points: 25},
		{Kind: "identity", Prompt: "What is the Pythagorean identity? ($\\sin^2(\\theta) + \\cos^2(\\theta)$ = ?)", Answer: "1", Points: 30},
	},
	TopicCalculus: {
		{Kind: "derivative", Prompt: "Find the derivative of $f(x) = 3x^2 + 2x - 5$", Answer: "6x+2", Points: 25},
		{Kind: "integral", Prompt: "Find the integral of $2x$ with respect to $x$", Answer: "x^2", Points: 25},
		{Kind: "limit", Prompt: "Find the limit: $\\lim_{x \\to 2} (x^2 + 3)$", Answer: "7", Points: 20},
	},
	TopicStatistics: {
		{Kind: "mean", Prompt: "Find the mean of: 5, 7, 9, 11, 13", Answer: "9", Points: 15},
		{Kind: "probability", Prompt: "What is the probability of getting heads when flipping a fair coin? (Fraction or decimal)", Answer: "0.5", Points: 15},
	},
}

// defaultBank is the package-level catalog, built once by init().
var defaultBank *Bank

func init() {
	defaultBank = newBank(seedProblems)
}
