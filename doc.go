// Package cubesolve models a 3x3 Rubik's cube as 26 physical pieces in a
// signed integer coordinate space and solves it with a layer-by-layer
// pipeline: bottom cross, first-layer corners, second-layer edges, then
// orientation and permutation of the last layer.
//
// The solved orientation is fixed: White up, Yellow down, Green front,
// Blue back, Red right, Orange left. Positions and sticker normals are
// integer vectors with components in {-1, 0, 1}, and quarter turns are
// exact integer rotations, so states never drift.
//
// Basic usage:
//
//	cube := cubesolve.NewCube()
//	scramble, err := cubesolve.ParseMoves("R U R' U' R' F R2 U' R' U' R U R' F'")
//	if err != nil {
//		log.Fatal(err)
//	}
//	cube.ApplyMoves(scramble)
//
//	sol := cubesolve.Solve(cube)
//	fmt.Println(sol.Outcome)                       // solved
//	fmt.Println(cubesolve.FormatMoves(sol.Moves())) // the full solution
//	for _, step := range sol.Steps {
//		fmt.Printf("[%s] %s: %s\n", step.Phase, step.Description,
//			cubesolve.FormatMoves(step.Moves))
//	}
package cubesolve
