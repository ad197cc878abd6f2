/*
Package bridge implements a two-way asset bridge between the local chain and a
remote chain guarded by a fixed set of witnesses.

Funds flowing out are locked (escrowed for locally native denominations,
escrowed and burned for remote denominations) and assigned a strictly
increasing outgoing sequence number. The witnesses attest to each outgoing
operation; once a configurable threshold of attestations is collected the
signatures are emitted in an event for off-chain relaying to the remote chain
and the operation is final.

Funds flowing in are claimed by the witnesses, one sequence number at a time.
Identical claims for the next expected incoming sequence number accumulate
until the threshold is reached, at which point the funds are released to the
target account (paid out of escrow for locally native denominations, minted
for remote denominations).
*/
package bridge
