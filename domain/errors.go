package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrUnauthorized will throw if the caller is not the registry owner of the asset
	ErrUnauthorized = errors.New("caller is not the asset owner")
	// ErrNotListingOwner will throw if the caller did not create the listing
	ErrNotListingOwner = errors.New("caller is not the listing owner")
	// ErrAlreadyListed will throw if an active listing already exists for the asset
	ErrAlreadyListed = errors.New("asset is already listed")
	// ErrNotAnAuction will throw when an auction operation targets a fixed price listing
	ErrNotAnAuction = errors.New("listing is not an auction")
	// ErrNotForSale will throw when buying a listing that is not directly purchasable
	ErrNotForSale = errors.New("listing is not for sale")
	// ErrBidTooLow will throw unless the bid strictly exceeds the current highest bid
	ErrBidTooLow = errors.New("bid is not higher than current highest bid")
	// ErrAuctionStillOpen will throw when ending an auction before its deadline
	ErrAuctionStillOpen = errors.New("auction deadline has not been reached")
	// ErrInsufficientFunds will throw if a payment or balance does not cover the amount due
	ErrInsufficientFunds = errors.New("insufficient funds")

	ErrInvalidNumberFormat = errors.New("invalid number format")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
)
