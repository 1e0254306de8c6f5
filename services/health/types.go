package health

type Service interface {
}

// Status is the snapshot logged on every health tick.
type Status struct {
	Connected bool
	Tweets    int64
}

type Impl struct {
	countTweets func() int64
	isConnected func() bool
}
