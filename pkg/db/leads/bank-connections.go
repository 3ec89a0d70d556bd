package leads

// SaveBankConnection stores the user to aggregator item pairing obtained
// from the public token exchange. Unlike survey responses this collection is
// owned by the backend, so it is created on first insert.
func (dbService *LeadsDBService) SaveBankConnection(connection BankConnection) error {
	if dbService == nil {
		return ErrNotConfigured
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionBankConnections().InsertOne(ctx, connection)
	return err
}
