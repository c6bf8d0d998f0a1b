package decpomdp

import "github.com/katalvlaran/lvlath-decision/entity"

// buildJointActions enumerates the Cartesian product of one action
// table per agent, via entity.Odometer, folding each tuple into a
// single joint entity.Action (entity.NewJointAction). It returns the
// resulting joint action table alongside a lookup from each joint
// action's hash back to the per-agent tuple that produced it, since
// a solved policy reports only the joint action and callers need to
// recover each agent's individual choice.
func buildJointActions(perAgent []*entity.Table[entity.Action]) (*entity.Table[entity.Action], map[uint32][]entity.Action, error) {
	if len(perAgent) == 0 {
		return nil, nil, ErrMissingPerAgentActions
	}

	sizes := make([]int, len(perAgent))
	rosters := make([][]entity.Action, len(perAgent))
	for i, t := range perAgent {
		rosters[i] = t.All()
		sizes[i] = len(rosters[i])
	}

	table := entity.NewTable[entity.Action]()
	decomposition := make(map[uint32][]entity.Action)

	odo := entity.NewOdometer(sizes)
	for !odo.Done() {
		idx := odo.Next()
		tuple := make([]entity.Action, len(idx))
		for i, j := range idx {
			tuple[i] = rosters[i][j]
		}
		joint, err := entity.NewJointAction(tuple...)
		if err != nil {
			return nil, nil, err
		}
		if err := table.Add(joint); err != nil {
			return nil, nil, err
		}
		decomposition[joint.Hash()] = tuple
	}
	table.Seal()

	return table, decomposition, nil
}

// buildJointObservations is buildJointActions's mirror for the
// observation space.
func buildJointObservations(perAgent []*entity.Table[entity.Observation]) (*entity.Table[entity.Observation], map[uint32][]entity.Observation, error) {
	if len(perAgent) == 0 {
		return nil, nil, ErrMissingPerAgentObservations
	}

	sizes := make([]int, len(perAgent))
	rosters := make([][]entity.Observation, len(perAgent))
	for i, t := range perAgent {
		rosters[i] = t.All()
		sizes[i] = len(rosters[i])
	}

	table := entity.NewTable[entity.Observation]()
	decomposition := make(map[uint32][]entity.Observation)

	odo := entity.NewOdometer(sizes)
	for !odo.Done() {
		idx := odo.Next()
		tuple := make([]entity.Observation, len(idx))
		for i, j := range idx {
			tuple[i] = rosters[i][j]
		}
		joint, err := entity.NewJointObservation(tuple...)
		if err != nil {
			return nil, nil, err
		}
		if err := table.Add(joint); err != nil {
			return nil, nil, err
		}
		decomposition[joint.Hash()] = tuple
	}
	table.Seal()

	return table, decomposition, nil
}
